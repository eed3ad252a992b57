package transaction

import (
	"stakelock.net/core/common"
	"stakelock.net/core/datastore"
	"stakelock.net/pkg/currency"
)

/*Transaction - the context of a single ledger operation: who calls, when,
and with what value attached */
type Transaction struct {
	Hash         datastore.Key    `json:"hash"`
	ClientID     datastore.Key    `json:"client_id"`
	ToClientID   datastore.Key    `json:"to_client_id,omitempty"`
	Value        currency.Coin    `json:"transaction_value"`
	CreationDate common.Timestamp `json:"creation_date"`
}
