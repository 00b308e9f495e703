package memoryprov_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/brent-hartwig/rsuite-conf-utils-lib/provider/memoryprov"
)

var _ = Describe("Provider", func() {
	Describe("Property", func() {
		It("should return seeded values untouched", func() {
			provider := memoryprov.New(map[string]string{"db.host": "  x  "})
			value, ok := provider.Property("db.host")
			Expect(ok).To(BeTrue())
			Expect(value).To(Equal("  x  "))
		})

		It("should report unset properties", func() {
			provider := memoryprov.New(nil)
			_, ok := provider.Property("db.host")
			Expect(ok).To(BeFalse())
		})

		It("should distinguish an empty value from an unset one", func() {
			provider := memoryprov.New(map[string]string{"db.host": ""})
			value, ok := provider.Property("db.host")
			Expect(ok).To(BeTrue())
			Expect(value).To(BeEmpty())
		})
	})

	Describe("Set and Delete", func() {
		It("should add, replace, and remove properties", func() {
			provider := memoryprov.New(nil)

			provider.Set("db.host", "x")
			value, ok := provider.Property("db.host")
			Expect(ok).To(BeTrue())
			Expect(value).To(Equal("x"))

			provider.Set("db.host", "y")
			value, _ = provider.Property("db.host")
			Expect(value).To(Equal("y"))

			provider.Delete("db.host")
			_, ok = provider.Property("db.host")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("PropertiesWithPrefix", func() {
		It("should return only matching entries, full keys included", func() {
			provider := memoryprov.New(map[string]string{
				"db.host":   "x",
				"db.port":   "5",
				"cache.ttl": "60",
			})
			Expect(provider.PropertiesWithPrefix("db.")).To(Equal(map[string]string{
				"db.host": "x",
				"db.port": "5",
			}))
		})

		It("should return an empty map for a prefix with no matches", func() {
			provider := memoryprov.New(map[string]string{"db.host": "x"})
			out := provider.PropertiesWithPrefix("mail.")
			Expect(out).NotTo(BeNil())
			Expect(out).To(BeEmpty())
		})
	})

	Describe("New", func() {
		It("should copy the seed map rather than alias it", func() {
			seed := map[string]string{"db.host": "x"}
			provider := memoryprov.New(seed)
			seed["db.host"] = "mutated"

			value, _ := provider.Property("db.host")
			Expect(value).To(Equal("x"))
		})
	})
})
