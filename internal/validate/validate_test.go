package validate

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/theairavi-del/splitt-app/internal/entity"
)

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	Expect(err).NotTo(HaveOccurred())
	return b
}

var _ = Describe("ReceiptJSON", func() {
	var receipt entity.ParsedReceipt

	BeforeEach(func() {
		receipt = entity.ParsedReceipt{
			Merchant: "Joe's Restaurant",
			Date:     "2024-01-15",
			Items: []entity.Item{
				{Name: "Chicken Wings", Price: 24.00, Quantity: 2, Confidence: 0.95},
			},
			Tax:        3.16,
			Tip:        8.00,
			Total:      50.66,
			Subtotal:   39.50,
			Confidence: 0.93,
		}
	})

	It("accepts a well-formed receipt", func() {
		Expect(ReceiptJSON(mustJSON(receipt))).To(Succeed())
	})

	It("accepts an empty receipt with an empty item list", func() {
		Expect(ReceiptJSON(mustJSON(entity.ParsedReceipt{Items: []entity.Item{}}))).To(Succeed())
	})

	It("accepts a negative derived subtotal", func() {
		receipt.Subtotal = -1.50
		Expect(ReceiptJSON(mustJSON(receipt))).To(Succeed())
	})

	It("rejects a negative item price", func() {
		receipt.Items[0].Price = -24.00
		Expect(ReceiptJSON(mustJSON(receipt))).NotTo(Succeed())
	})

	It("rejects a zero item quantity", func() {
		receipt.Items[0].Quantity = 0
		Expect(ReceiptJSON(mustJSON(receipt))).NotTo(Succeed())
	})

	It("rejects an empty item name", func() {
		receipt.Items[0].Name = ""
		Expect(ReceiptJSON(mustJSON(receipt))).NotTo(Succeed())
	})

	It("rejects a confidence outside [0,1]", func() {
		receipt.Confidence = 1.5
		Expect(ReceiptJSON(mustJSON(receipt))).NotTo(Succeed())
	})

	It("rejects a missing required field", func() {
		var m map[string]any
		Expect(json.Unmarshal(mustJSON(receipt), &m)).To(Succeed())
		delete(m, "total")
		Expect(ReceiptJSON(mustJSON(m))).NotTo(Succeed())
	})

	It("rejects unknown top-level fields", func() {
		var m map[string]any
		Expect(json.Unmarshal(mustJSON(receipt), &m)).To(Succeed())
		m["currency"] = "USD"
		Expect(ReceiptJSON(mustJSON(m))).NotTo(Succeed())
	})

	It("rejects malformed json", func() {
		Expect(ReceiptJSON([]byte("{not json"))).NotTo(Succeed())
	})
})

var _ = Describe("AgainstSchema", func() {
	It("applies an arbitrary schema", func() {
		schema := map[string]any{
			"type":     "object",
			"required": []string{"name"},
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
			},
		}
		Expect(AgainstSchema(schema, []byte(`{"name":"ok"}`))).To(Succeed())
		Expect(AgainstSchema(schema, []byte(`{}`))).NotTo(Succeed())
	})
})
