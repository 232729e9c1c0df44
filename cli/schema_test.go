// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("result data schemas", func() {

	It("keeps containers and fields in declaration order", func() {
		schema := NewSchema()
		schema.AddChild("uptime", "Uptime", "Last Booted")
		schema.AddChild("system", "Host Name")

		names := []string{}
		for _, node := range schema.Children() {
			names = append(names, node.Name())
		}
		Expect(names).Should(Equal([]string{"uptime", "system"}))

		node, ok := schema.Child("uptime")
		Expect(ok).Should(BeTrue())
		Expect(node.Fields()).Should(Equal([]string{"Uptime", "Last Booted"}))
	})

	It("replaces re-declared containers, keeping their position", func() {
		schema := NewSchema()
		first := schema.AddChild("uptime", "Uptime")
		schema.AddChild("system")
		again := schema.AddChild("uptime", "Uptime", "Last Booted")
		Expect(again).Should(BeIdenticalTo(first))

		names := []string{}
		for _, node := range schema.Children() {
			names = append(names, node.Name())
		}
		Expect(names).Should(Equal([]string{"uptime", "system"}))
		Expect(first.Fields()).Should(Equal([]string{"Uptime", "Last Booted"}))
	})

	It("seeds containers from their schema node", func() {
		schema := NewSchema()
		schema.AddChild("uptime", "Uptime", "Last Booted")
		data := NewData(schema)

		c := data.Container("uptime")
		Expect(c.Fields()).Should(Equal([]string{"Uptime", "Last Booted"}))
		_, ok := c.Get("Uptime")
		Expect(ok).Should(BeFalse())

		c.Set("Uptime", "42 days")
		value, ok := c.Get("Uptime")
		Expect(ok).Should(BeTrue())
		Expect(value).Should(Equal("42 days"))
		// Setting a declared field must not change the rendering order.
		Expect(c.Fields()).Should(Equal([]string{"Uptime", "Last Booted"}))

		c.Set("Surprise", "yes")
		Expect(c.Fields()).Should(Equal([]string{
			"Uptime", "Last Booted", "Surprise",
		}))
	})

	It("creates ad-hoc containers without any declared fields", func() {
		data := NewData(NewSchema())
		c := data.Container("adhoc")
		Expect(c.Fields()).Should(BeEmpty())
		c.Set("B", "2")
		c.Set("A", "1")
		Expect(c.Fields()).Should(Equal([]string{"B", "A"}))
	})

	It("hands out the same container on repeated use", func() {
		data := NewData(NewSchema())
		c := data.Container("uptime")
		data.Container("system")
		Expect(data.Container("uptime")).Should(BeIdenticalTo(c))

		names := []string{}
		for _, c := range data.Containers() {
			names = append(names, c.Name())
		}
		Expect(names).Should(Equal([]string{"uptime", "system"}))
	})

})
