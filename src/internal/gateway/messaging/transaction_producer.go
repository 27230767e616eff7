package messaging

import (
	"tontine-service/src/internal/model"
	kafka "tontine-service/src/pkg/kafka/confluent"
	"tontine-service/src/pkg/log"
)

type TransactionProducer struct {
	DepositCompletedProducer Producer[*model.DepositCompletedEvent]
}

func NewTransactionProducer(producer kafka.Producer, logger log.Log) *TransactionProducer {
	return &TransactionProducer{
		DepositCompletedProducer: Producer[*model.DepositCompletedEvent]{
			Producer: producer,
			Topic:    "deposit-completed",
			Log:      logger,
		},
	}
}

func (t *TransactionProducer) SendDepositCompleted(event *model.DepositCompletedEvent) error {
	return t.DepositCompletedProducer.Send(event)
}
