package collection_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/electric-sql/d2go/pkg/collection"
)

func entry(v int, m int) collection.Entry[int] {
	return collection.Entry[int]{Value: v, Multiplicity: m}
}

var _ = Describe("Collection", func() {
	Context("Construction", func() {
		It("should preserve entry order and duplicates", func() {
			c := collection.New(entry(10, 1), entry(20, 2), entry(10, 3))
			Expect(c.Len()).To(Equal(3))
			Expect(c.Entries()).To(Equal([]collection.Entry[int]{
				entry(10, 1), entry(20, 2), entry(10, 3),
			}))
		})

		It("should copy the input slice", func() {
			entries := []collection.Entry[int]{entry(1, 1)}
			c := collection.New(entries...)
			entries[0] = entry(99, 99)
			Expect(c.At(0)).To(Equal(entry(1, 1)))
		})
	})

	Context("Concat", func() {
		It("should concatenate preserving relative order", func() {
			a := collection.New(entry(1, 1), entry(2, 1))
			b := collection.New(entry(3, 1))
			c := a.Concat(b)
			Expect(c.Entries()).To(Equal([]collection.Entry[int]{
				entry(1, 1), entry(2, 1), entry(3, 1),
			}))
			// Operands are unchanged.
			Expect(a.Len()).To(Equal(2))
			Expect(b.Len()).To(Equal(1))
		})
	})

	Context("Negate", func() {
		It("should flip every multiplicity", func() {
			c := collection.New(entry(1, 2), entry(2, -3)).Negate()
			Expect(c.Entries()).To(Equal([]collection.Entry[int]{
				entry(1, -2), entry(2, 3),
			}))
		})

		It("should cancel against the original under consolidation", func() {
			c := collection.New(entry(1, 2), entry(2, -3))
			Expect(c.Concat(c.Negate()).Consolidate().IsEmpty()).To(BeTrue())
		})
	})

	Context("Consolidate", func() {
		It("should sum multiplicities per value", func() {
			c := collection.New(entry(10, 1), entry(10, 2), entry(20, 1)).Consolidate()
			Expect(c.Entries()).To(Equal([]collection.Entry[int]{
				entry(10, 3), entry(20, 1),
			}))
		})

		It("should drop net-zero values", func() {
			c := collection.New(entry(10, 1), entry(20, 1), entry(10, -1)).Consolidate()
			Expect(c.Entries()).To(Equal([]collection.Entry[int]{entry(20, 1)}))
		})

		It("should keep first-appearance order", func() {
			c := collection.New(entry(3, 1), entry(1, 1), entry(3, 1), entry(2, 1)).Consolidate()
			Expect(c.Entries()).To(Equal([]collection.Entry[int]{
				entry(3, 2), entry(1, 1), entry(2, 1),
			}))
		})
	})

	Context("Equality", func() {
		It("should ignore grouping and order", func() {
			a := collection.New(entry(10, 1), entry(10, 2))
			b := collection.New(entry(10, 3))
			Expect(a.Equal(b)).To(BeTrue())
			Expect(b.Equal(a)).To(BeTrue())
		})

		It("should distinguish different net multiplicities", func() {
			a := collection.New(entry(10, 1))
			b := collection.New(entry(10, 2))
			Expect(a.Equal(b)).To(BeFalse())
		})

		It("should treat net-zero values as absent", func() {
			a := collection.New(entry(10, 1), entry(10, -1))
			Expect(a.Equal(collection.New[int]())).To(BeTrue())
		})
	})

	Context("Multiplicity", func() {
		It("should report the net multiplicity of a value", func() {
			c := collection.New(entry(10, 1), entry(10, 2), entry(20, -1))
			Expect(c.Multiplicity(10)).To(Equal(3))
			Expect(c.Multiplicity(20)).To(Equal(-1))
			Expect(c.Multiplicity(30)).To(Equal(0))
		})
	})
})
