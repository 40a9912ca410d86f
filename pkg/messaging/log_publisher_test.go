package messaging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/abgdnv/storefront/pkg/messaging"
	"github.com/abgdnv/storefront/pkg/messaging/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LogPublisher_Publish(t *testing.T) {
	// given
	buf := &bytes.Buffer{}
	publisher := messaging.NewLogPublisher(slog.New(slog.NewJSONHandler(buf, nil)))

	// when
	err := publisher.Publish(context.Background(), events.OrderCancelledEvent{
		OrderID:    "500",
		ProductID:  "700",
		CustomerID: "900",
		Restocked:  true,
	})

	// then
	require.NoError(t, err)
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Event published", record["msg"])
	assert.Equal(t, messaging.OrdersCancelledSubject, record["subject"])
	assert.JSONEq(t, `{"order_id":"500","product_id":"700","customer_id":"900","restocked":true}`, record["payload"].(string))
}
