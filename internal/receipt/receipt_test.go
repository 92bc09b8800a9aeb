package receipt

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Receipt", func() {
	Describe("Validate", func() {
		It("should accept a complete receipt", func() {
			Expect(validReceipt().Validate()).To(Succeed())
		})

		It("should list every missing field in order", func() {
			err := (&Receipt{Retailer: strPtr("Target")}).Validate()
			Expect(err).To(MatchError("invalid receipt: missing purchaseDate, purchaseTime, total, items"))
		})

		It("should treat empty strings as present", func() {
			r := &Receipt{
				Retailer:     strPtr(""),
				PurchaseDate: strPtr(""),
				PurchaseTime: strPtr(""),
				Total:        strPtr(""),
				Items:        []Item{},
			}
			Expect(r.Validate()).To(Succeed())
		})
	})

	Describe("Clone", func() {
		It("should not share memory with the original", func() {
			original := validReceipt()
			clone := original.Clone()
			Expect(clone).To(Equal(original))

			*original.Retailer = "Walmart"
			original.Items[0].Price = "0.01"

			Expect(*clone.Retailer).To(Equal("Target"))
			Expect(clone.Items[0].Price).To(Equal("6.49"))
		})

		It("should keep an empty items list empty rather than nil", func() {
			r := validReceipt()
			r.Items = []Item{}
			Expect(r.Clone().Items).NotTo(BeNil())
			Expect(r.Clone().Items).To(BeEmpty())
		})

		It("should return nil for a nil receipt", func() {
			var r *Receipt
			Expect(r.Clone()).To(BeNil())
		})
	})
})
