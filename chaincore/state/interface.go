package state

import (
	"stakelock.net/chaincore/transaction"
	"stakelock.net/core/datastore"
	"stakelock.net/pkg/currency"
)

/*
* The state context is available to the smart contract logic. It is the only
* path by which asset value enters or leaves contract custody. Pulls and
* pushes may be backed by assets that take a fee on transfer, so PullTokens
* reports the amount that actually moved; the contract compares it against
* the requested amount and aborts the whole operation on a mismatch.
 */

//StateContextI - a state context interface available to the smart contract
type StateContextI interface {
	GetTransaction() *transaction.Transaction
	GetClientBalance(asset, clientID datastore.Key) (currency.Coin, error)
	// PullTokens moves amount of asset from the client into custody of the
	// to client (the contract) and returns the amount actually moved.
	PullTokens(asset, fromClientID, toClientID datastore.Key, amount currency.Coin) (currency.Coin, error)
	// PushTokens moves amount of asset out of the contract's custody.
	PushTokens(asset, fromClientID, toClientID datastore.Key, amount currency.Coin) error
	EmitEvent(eventType EventType, tag EventTag, index string, data interface{})
	GetTransfers() []*Transfer
	GetEvents() []Event
}
