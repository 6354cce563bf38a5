// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package statsrs realizes the dashboard resource, adapting the
// back-office statistics REST API to the stats use case.
package statsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/serdser"
	"github.com/izhdrive/rentweb/pkg/core/usecase/statsuc"
)

type resource struct {
	stats *statsuc.UseCase
}

// RegisterAdmin instantiates a resource adapting the stats use case
// instance with a single GET request to /stats, returning the fleet,
// clients, and revenue counters of the dashboard.
//
// The r group is expected to be guarded by the ADMIN role.
func RegisterAdmin(r *gin.RouterGroup, stats *statsuc.UseCase) {
	rs := &resource{stats: stats}
	r.GET("stats", rs.Summary)
}

func (rs *resource) Summary(c *gin.Context) {
	s, err := rs.stats.Summarize(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"totalCars":    s.TotalCars,
		"totalClients": s.TotalClients,
		"totalRevenue": s.TotalRevenue,
		"carsByStatus": s.CarsByStatus,
	})
}
