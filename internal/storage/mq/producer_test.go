package mq

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/inventory-pos/pkg/ptr"
)

func TestBuildProduceRecord(t *testing.T) {
	rec := buildProduceRecord(ProduceMsg{
		Topic:        "inventory.alert.raised",
		Headers:      map[string]string{"traceparent": "00-abc", "X-Correlation-ID": "c-1"},
		Payload:      []byte(`{"alert_id":1}`),
		PartitionKey: ptr.New("42"),
	})

	assert.Equal(t, "inventory.alert.raised", rec.Topic)
	assert.Equal(t, []byte("42"), rec.Key)
	assert.JSONEq(t, `{"alert_id":1}`, string(rec.Value))
	if assert.Len(t, rec.Headers, 2) {
		assert.Equal(t, "X-Correlation-ID", rec.Headers[0].Key)
		assert.Equal(t, "traceparent", rec.Headers[1].Key)
	}

	rec = buildProduceRecord(ProduceMsg{Topic: "sales.sale.created"})
	assert.Nil(t, rec.Key)
	assert.Empty(t, rec.Headers)
}
