// Package events publishes settlement lifecycle events for dashboard
// consumers. Publishing is fire-and-forget: a broker outage must never fail
// or delay a settlement.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"moveboss/internal/config"
	"moveboss/internal/logger"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SettlementEvent struct {
	SettlementID   uuid.UUID `json:"settlement_id"`
	TripID         uuid.UUID `json:"trip_id"`
	DriverID       uuid.UUID `json:"driver_id"`
	TotalRevenue   float64   `json:"total_revenue"`
	TotalDriverPay float64   `json:"total_driver_pay"`
	TotalExpenses  float64   `json:"total_expenses"`
	TotalProfit    float64   `json:"total_profit"`
	Recalculated   bool      `json:"recalculated"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type Publisher struct {
	client  mqtt.Client
	enabled bool
}

// NewPublisher connects to the configured broker. With MQTT disabled it
// returns an inert publisher so callers never have to nil-check.
func NewPublisher(cfg *config.MQTTConfig) (*Publisher, error) {
	if cfg == nil || !cfg.Enabled || cfg.Broker == "" {
		return &Publisher{}, nil
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(5 * time.Second)
	opts.SetMaxReconnectInterval(1 * time.Minute)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(5 * time.Second) {
		return nil, fmt.Errorf("timed out connecting to MQTT broker %s", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker %s: %w", cfg.Broker, err)
	}

	logger.Info("MQTT publisher connected", zap.String("broker", cfg.Broker))

	return &Publisher{client: client, enabled: true}, nil
}

// SettlementSettled publishes to settlements/{trip_id} at QoS 0 without
// waiting for delivery.
func (p *Publisher) SettlementSettled(evt *SettlementEvent) {
	if p == nil || !p.enabled {
		return
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		logger.Error("Failed to marshal settlement event", zap.Error(err))
		return
	}

	topic := fmt.Sprintf("settlements/%s", evt.TripID)
	p.client.Publish(topic, 0, false, payload)
}

func (p *Publisher) Close() {
	if p == nil || !p.enabled {
		return
	}
	p.client.Disconnect(250)
}
