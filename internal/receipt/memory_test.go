package receipt

import (
	"fmt"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MemoryDB", func() {
	var db *MemoryDB

	BeforeEach(func() {
		db = NewMemoryDB()
	})

	Describe("SaveReceipt", func() {
		It("should store a receipt that can be read back", func() {
			Expect(db.SaveReceipt("test-id", validReceipt())).To(Succeed())

			saved, err := db.GetReceipt("test-id")
			Expect(err).NotTo(HaveOccurred())
			Expect(saved).To(Equal(validReceipt()))
		})

		It("should reject an ID that is already taken", func() {
			Expect(db.SaveReceipt("test-id", validReceipt())).To(Succeed())

			other := validReceipt()
			other.Retailer = strPtr("Walmart")
			Expect(db.SaveReceipt("test-id", other)).To(MatchError(ErrDuplicateID))

			saved, err := db.GetReceipt("test-id")
			Expect(err).NotTo(HaveOccurred())
			Expect(*saved.Retailer).To(Equal("Target"))
		})

		It("should not be affected by later changes to the submitted receipt", func() {
			r := validReceipt()
			Expect(db.SaveReceipt("test-id", r)).To(Succeed())

			*r.Total = "0.00"
			r.Items = append(r.Items, Item{ShortDescription: "Extra", Price: "1.00"})

			saved, err := db.GetReceipt("test-id")
			Expect(err).NotTo(HaveOccurred())
			Expect(*saved.Total).To(Equal("35.35"))
			Expect(saved.Items).To(HaveLen(5))
		})
	})

	Describe("GetReceipt", func() {
		It("should return ErrNotFound for an unknown ID", func() {
			saved, err := db.GetReceipt("missing")
			Expect(err).To(MatchError(ErrNotFound))
			Expect(saved).To(BeNil())
		})

		It("should hand out copies", func() {
			Expect(db.SaveReceipt("test-id", validReceipt())).To(Succeed())

			first, err := db.GetReceipt("test-id")
			Expect(err).NotTo(HaveOccurred())
			first.Items[0].ShortDescription = "changed"

			second, err := db.GetReceipt("test-id")
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Items[0].ShortDescription).To(Equal("Mountain Dew 12PK"))
		})
	})

	It("should handle concurrent writers and readers", func() {
		const workers = 50

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				defer GinkgoRecover()

				id := fmt.Sprintf("id-%d", i)
				r := validReceipt()
				r.Retailer = strPtr(fmt.Sprintf("Store %d", i))
				Expect(db.SaveReceipt(id, r)).To(Succeed())

				saved, err := db.GetReceipt(id)
				Expect(err).NotTo(HaveOccurred())
				Expect(*saved.Retailer).To(Equal(fmt.Sprintf("Store %d", i)))
			}(i)
		}
		wg.Wait()

		for i := 0; i < workers; i++ {
			saved, err := db.GetReceipt(fmt.Sprintf("id-%d", i))
			Expect(err).NotTo(HaveOccurred())
			Expect(*saved.Retailer).To(Equal(fmt.Sprintf("Store %d", i)))
		}
	})
})
