// Copyright 2025-2026
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/daftar-pantau/dp-api/common"
)

var _ = Describe("Cache", func() {
	BeforeEach(func() {
		viper.Set("cache.local_size", 64)
		viper.Set("cache.redis_url", "")
		common.SetupCache()
	})

	It("should roundtrip values through the local tier", func() {
		Expect(common.CacheSet("greeting", []byte("hello"))).To(Succeed())

		val, err := common.CacheGet("greeting")
		Expect(err).To(BeNil())
		Expect(val).To(Equal([]byte("hello")))
	})

	It("should roundtrip values larger than the compression threshold", func() {
		payload := []byte(strings.Repeat("daftar pantau ", 1024))
		Expect(common.CacheSet("big", payload)).To(Succeed())

		val, err := common.CacheGet("big")
		Expect(err).To(BeNil())
		Expect(val).To(Equal(payload))
	})

	It("should miss on unknown keys", func() {
		val, err := common.CacheGet("missing")
		Expect(err).To(BeNil())
		Expect(val).To(BeEmpty())
	})

	It("should drop all entries on purge", func() {
		Expect(common.CacheSet("greeting", []byte("hello"))).To(Succeed())
		common.CachePurge()

		val, err := common.CacheGet("greeting")
		Expect(err).To(BeNil())
		Expect(val).To(BeEmpty())
	})
})
