package state

import (
	"encoding/json"

	"stakelock.net/core/common"
	"stakelock.net/core/datastore"
	"stakelock.net/pkg/currency"
)

var ErrInvalidTransfer = common.NewError("invalid_transfer", "invalid transfer of state")

//Transfer - a data structure to hold a state transfer of one asset from one
//client to another
type Transfer struct {
	ClientID   datastore.Key `json:"from"`
	ToClientID datastore.Key `json:"to"`
	Asset      datastore.Key `json:"asset"`
	Amount     currency.Coin `json:"amount"`
}

//NewTransfer - create a new transfer
func NewTransfer(fromClientID, toClientID, asset datastore.Key, amount currency.Coin) *Transfer {
	t := &Transfer{ClientID: fromClientID, ToClientID: toClientID, Asset: asset, Amount: amount}
	return t
}

func (t *Transfer) Encode() []byte {
	buff, _ := json.Marshal(t)
	return buff
}

func (t *Transfer) Decode(input []byte) error {
	err := json.Unmarshal(input, t)
	return err
}
