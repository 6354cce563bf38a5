// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/izhdrive/rentweb/pkg/adapter/config/settings"
	"gopkg.in/yaml.v3"
)

func ExampleDuration_jsonSerialization() {
	w := settings.Duration(90 * time.Minute)
	s := &struct {
		Window *settings.Duration `json:"window"`
	}{Window: &w}
	b, err := json.Marshal(s)
	fmt.Println(err)
	fmt.Println(string(b))
	// Output:
	// <nil>
	// {"window":"1h30m"}
}

func ExampleDuration_yamlDeserialization() {
	s := &struct {
		Window *settings.Duration `yaml:"window"`
	}{}
	err := yaml.Unmarshal([]byte("window: 5m\n"), s)
	fmt.Println(err)
	fmt.Println(time.Duration(*s.Window))
	// Output:
	// <nil>
	// 5m0s
}
