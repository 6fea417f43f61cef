package domain

// BoundDirection - направление движения по линии между двумя станциями
type BoundDirection string

const (
	BoundInbound  BoundDirection = "INBOUND"
	BoundOutbound BoundDirection = "OUTBOUND"
)

// FoundPath - маршрут между двумя группами станций по одной линии
type FoundPath struct {
	Line     *Line          `json:"line"`
	Stations []*Station     `json:"stations"`
	Bound    BoundDirection `json:"bound"`
}
