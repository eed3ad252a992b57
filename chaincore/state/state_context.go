package state

import (
	"sync"

	"stakelock.net/chaincore/transaction"
	"stakelock.net/core/common"
	"stakelock.net/core/datastore"
	"stakelock.net/pkg/currency"
)

//StateContext - a context object used to manipulate client balances while
//executing a single transaction. Balances are tracked per asset.
type StateContext struct {
	mutex     sync.Mutex
	txn       *transaction.Transaction
	balances  map[datastore.Key]map[datastore.Key]currency.Coin
	transfers []*Transfer
	events    []Event
}

func NewStateContext(txn *transaction.Transaction) *StateContext {
	return &StateContext{
		txn:      txn,
		balances: make(map[datastore.Key]map[datastore.Key]currency.Coin),
	}
}

func (sc *StateContext) GetTransaction() *transaction.Transaction {
	return sc.txn
}

//SetTransaction - rebind the context to the next transaction, keeping the
//balance state
func (sc *StateContext) SetTransaction(txn *transaction.Transaction) {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	sc.txn = txn
}

func (sc *StateContext) GetClientBalance(asset, clientID datastore.Key) (currency.Coin, error) {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	clients, ok := sc.balances[asset]
	if !ok {
		return currency.Coin{}, common.NewError("value_not_present", "no balances for asset")
	}
	return clients[clientID], nil
}

//SetClientBalance - seed a client balance, replacing any previous value
func (sc *StateContext) SetClientBalance(asset, clientID datastore.Key, amount currency.Coin) {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	clients, ok := sc.balances[asset]
	if !ok {
		clients = make(map[datastore.Key]currency.Coin)
		sc.balances[asset] = clients
	}
	clients[clientID] = amount
}

func (sc *StateContext) PullTokens(asset, fromClientID, toClientID datastore.Key, amount currency.Coin) (currency.Coin, error) {
	if err := sc.move(asset, fromClientID, toClientID, amount); err != nil {
		return currency.Coin{}, err
	}
	return amount, nil
}

func (sc *StateContext) PushTokens(asset, fromClientID, toClientID datastore.Key, amount currency.Coin) error {
	return sc.move(asset, fromClientID, toClientID, amount)
}

func (sc *StateContext) move(asset, fromClientID, toClientID datastore.Key, amount currency.Coin) error {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	clients, ok := sc.balances[asset]
	if !ok {
		clients = make(map[datastore.Key]currency.Coin)
		sc.balances[asset] = clients
	}
	from := clients[fromClientID]
	newFrom, err := currency.MinusCoin(from, amount)
	if err != nil {
		return common.NewErrorf("insufficient_balance",
			"client %v has %v of asset %v, needs %v", fromClientID, from, asset, amount)
	}
	newTo, err := currency.AddCoin(clients[toClientID], amount)
	if err != nil {
		return err
	}
	clients[fromClientID] = newFrom
	clients[toClientID] = newTo
	sc.transfers = append(sc.transfers, NewTransfer(fromClientID, toClientID, asset, amount))
	return nil
}

func (sc *StateContext) EmitEvent(eventType EventType, tag EventTag, index string, data interface{}) {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	var hash datastore.Key
	if sc.txn != nil {
		hash = sc.txn.Hash
	}
	sc.events = append(sc.events, Event{
		TxHash: hash,
		Type:   eventType,
		Tag:    tag,
		Index:  index,
		Data:   data,
	})
}

func (sc *StateContext) GetTransfers() []*Transfer {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	return sc.transfers
}

func (sc *StateContext) GetEvents() []Event {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	return sc.events
}
