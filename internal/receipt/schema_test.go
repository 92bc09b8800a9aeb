package receipt

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("decodeReceipt", func() {
	It("should decode a well-formed receipt", func() {
		r, err := decodeReceipt([]byte(`{
			"retailer": "Target",
			"purchaseDate": "2022-01-01",
			"purchaseTime": "13:01",
			"total": "1.25",
			"items": [{"shortDescription": "Pepsi - 12-oz", "price": "1.25"}]
		}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(*r.Retailer).To(Equal("Target"))
		Expect(r.Items).To(Equal([]Item{{ShortDescription: "Pepsi - 12-oz", Price: "1.25"}}))
	})

	It("should keep absent fields nil", func() {
		r, err := decodeReceipt([]byte(`{"retailer": "Target", "total": null}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Total).To(BeNil())
		Expect(r.Items).To(BeNil())
		Expect(r.Validate()).To(MatchError(ErrInvalidReceipt))
	})

	It("should accept malformed values of the right type", func() {
		r, err := decodeReceipt([]byte(`{"retailer": "X", "purchaseDate": "yesterday", "purchaseTime": "noon", "total": "abc", "items": []}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Validate()).To(Succeed())
	})

	It("should ignore unknown fields", func() {
		_, err := decodeReceipt([]byte(`{"retailer": "Target", "cashier": "Bob"}`))
		Expect(err).NotTo(HaveOccurred())
	})

	DescribeTable("rejects bodies that are not receipts",
		func(body string, message string) {
			r, err := decodeReceipt([]byte(body))
			Expect(err).To(MatchError(ContainSubstring(message)))
			Expect(r).To(BeNil())
		},
		Entry("broken JSON", `{"retailer": `, "invalid JSON"),
		Entry("empty body", ``, "invalid JSON"),
		Entry("array", `[]`, "does not match schema"),
		Entry("JSON null", `null`, "does not match schema"),
		Entry("numeric total", `{"total": 35.35}`, "does not match schema"),
		Entry("items as object", `{"items": {"price": "1.00"}}`, "does not match schema"),
		Entry("numeric price", `{"items": [{"shortDescription": "Gum", "price": 1}]}`, "does not match schema"),
	)
})
