package tokenpool

import (
	"encoding/json"

	"stakelock.net/chaincore/transaction"
	"stakelock.net/core/common"
	"stakelock.net/core/datastore"
	"stakelock.net/pkg/currency"
)

type TokenPoolTransferResponse struct {
	TxnHash    datastore.Key `json:"txn_hash,omitempty"`
	FromPool   datastore.Key `json:"from_pool,omitempty"`
	ToPool     datastore.Key `json:"to_pool,omitempty"`
	Value      currency.Coin `json:"value,omitempty"`
	FromClient datastore.Key `json:"from_client,omitempty"`
	ToClient   datastore.Key `json:"to_client,omitempty"`
}

func (p *TokenPoolTransferResponse) Encode() []byte {
	buff, _ := json.Marshal(p)
	return buff
}

func (p *TokenPoolTransferResponse) Decode(input []byte) error {
	err := json.Unmarshal(input, p)
	return err
}

//TokenPool - tracks the asset amount held in custody for one reward pool.
//The pool balance only changes through the dig/fill/drain bookkeeping below,
//always with checked arithmetic, so custody can be audited against the sum
//of outstanding obligations at any time.
type TokenPool struct {
	ID      datastore.Key `json:"id"`
	Balance currency.Coin `json:"balance"`
}

func (p *TokenPool) GetBalance() currency.Coin {
	return p.Balance
}

func (p *TokenPool) SetBalance(value currency.Coin) {
	p.Balance = value
}

func (p *TokenPool) GetID() datastore.Key {
	return p.ID
}

//DigPool - create the custody record with its initial escrow
func (p *TokenPool) DigPool(id datastore.Key, txn *transaction.Transaction, amount currency.Coin) (string, error) {
	if amount.IsZero() {
		return "", common.NewError("digging pool failed", "insufficient funds")
	}
	p.ID = id
	p.Balance = amount

	tpr := &TokenPoolTransferResponse{
		TxnHash:    txn.Hash,
		FromClient: txn.ClientID,
		ToPool:     p.ID,
		ToClient:   txn.ToClientID,
		Value:      amount,
	}
	return string(tpr.Encode()), nil
}

//FillPool - add to the custody balance
func (p *TokenPool) FillPool(txn *transaction.Transaction, amount currency.Coin) (string, error) {
	if amount.IsZero() {
		return "", common.NewError("filling pool failed", "insufficient funds")
	}
	newBalance, err := currency.AddCoin(p.Balance, amount)
	if err != nil {
		return "", common.NewError("filling pool failed", err.Error())
	}
	p.Balance = newBalance

	tpr := &TokenPoolTransferResponse{
		TxnHash:    txn.Hash,
		FromClient: txn.ClientID,
		ToPool:     p.ID,
		ToClient:   txn.ToClientID,
		Value:      amount,
	}
	return string(tpr.Encode()), nil
}

//DrainPool - take value out of custody for a payout
func (p *TokenPool) DrainPool(fromClientID, toClientID datastore.Key, value currency.Coin) (string, error) {
	newBalance, err := currency.MinusCoin(p.Balance, value)
	if err != nil {
		return "", common.NewError("draining pool failed", "value exceeds balance")
	}
	p.Balance = newBalance

	tpr := &TokenPoolTransferResponse{
		FromClient: fromClientID,
		ToClient:   toClientID,
		Value:      value,
		FromPool:   p.ID,
	}
	return string(tpr.Encode()), nil
}

//EmptyPool - drain whatever custody remains
func (p *TokenPool) EmptyPool(fromClientID, toClientID datastore.Key) (currency.Coin, string, error) {
	if p.Balance.IsZero() {
		return currency.Coin{}, "", common.NewError("emptying pool failed", "pool already empty")
	}
	value := p.Balance
	p.Balance = currency.Coin{}

	tpr := &TokenPoolTransferResponse{
		FromClient: fromClientID,
		ToClient:   toClientID,
		Value:      value,
		FromPool:   p.ID,
	}
	return value, string(tpr.Encode()), nil
}
