// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

// Tx represents a database transaction. It is unsafe for concurrent
// use and runs one statement at a time; all statements within one Tx
// observe the ACID properties. A READ-COMMITTED isolation level is
// expected from a PostgreSQL DBMS server by default, which is enough
// for the lifecycle operations because every conditional status
// update re-reads the committed row state. For details, read
// https://www.postgresql.org/docs/current/transaction-iso.html#XACT-READ-COMMITTED
type Tx interface {
	Queryer

	// IsTx method prevents a non-Tx object (such as a Conn) to
	// mistakenly implement the Tx interface.
	IsTx()
}
