package notify

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
)

// KafkaChannel publishes notifications to a kafka topic, keyed by image URL
// so all sales of one NFT land in the same partition.
type KafkaChannel struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaChannel(brokers []string, topic, user, password string) (*KafkaChannel, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	if user != "" {
		config.Net.SASL.Enable = true
		config.Net.SASL.User = user
		config.Net.SASL.Password = password
	}
	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}
	return &KafkaChannel{producer: producer, topic: topic}, nil
}

func (k *KafkaChannel) Name() string { return "kafka" }

func (k *KafkaChannel) Send(ctx context.Context, n Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	_, _, err = k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(n.ImageURL),
		Value: sarama.ByteEncoder(data),
	})
	return err
}

func (k *KafkaChannel) Close() error { return k.producer.Close() }
