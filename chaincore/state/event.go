package state

type EventType int

const (
	TypeNone EventType = iota
	TypeError
	TypeStats
)

type EventTag int

const (
	TagNone EventTag = iota
	TagPoolCreated
	TagStakeCreated
	TagUnstaked
	TagRewardsWithdrawn
)

//Event - a notification emitted by a completed state-mutating operation
type Event struct {
	TxHash string      `json:"tx_hash"`
	Type   EventType   `json:"type"`
	Tag    EventTag    `json:"tag"`
	Index  string      `json:"index"`
	Data   interface{} `json:"data"`
}
