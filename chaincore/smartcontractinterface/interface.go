package smartcontractinterface

import (
	"context"
	"encoding/json"
	"net/url"

	"stakelock.net/chaincore/state"
	"stakelock.net/chaincore/transaction"
	"stakelock.net/core/datastore"
)

const Seperator = ":"

type SmartContractRestHandler func(ctx context.Context, params url.Values) (interface{}, error)

type SmartContract struct {
	ID                          datastore.Key
	RestHandlers                map[string]SmartContractRestHandler
	SmartContractExecutionStats map[string]interface{}
}

func NewSC(id datastore.Key) *SmartContract {
	return &SmartContract{
		ID:                          id,
		RestHandlers:                make(map[string]SmartContractRestHandler),
		SmartContractExecutionStats: make(map[string]interface{}),
	}
}

type SmartContractTransactionData struct {
	FunctionName string          `json:"name"`
	InputData    json.RawMessage `json:"input"`
}

type SmartContractInterface interface {
	Execute(t *transaction.Transaction, funcName string, input []byte, balances state.StateContextI) (string, error)
	GetName() string
	GetAddress() string
	GetRestPoints() map[string]SmartContractRestHandler
}
