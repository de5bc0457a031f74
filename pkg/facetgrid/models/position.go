package models

import "time"

// CardPosition is a record's logical, axis-relative coordinate. It is
// derived once per record and cached, so pixel placement survives axis
// remapping and filter toggles.
type CardPosition struct {
	RecordID    string    `json:"recordId"`
	X           AxisValue `json:"x"`
	Y           AxisValue `json:"y"`
	Z           AxisValue `json:"z"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// GridSnapshot is the only externally persisted structure the engine
// defines: cached logical positions plus custom per-group record orders.
type GridSnapshot struct {
	Positions        map[string]CardPosition `json:"positions"`
	CustomSortOrders map[string][]string     `json:"customSortOrders,omitempty"`
}
