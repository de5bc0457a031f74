package position

import (
	"encoding/json"
	"errors"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// ErrMalformedSnapshot indicates a restore payload that could not be
// validated. The payload is discarded and prior in-memory state is left
// untouched.
var ErrMalformedSnapshot = errors.New("malformed grid snapshot")

// Snapshot exports the tracker's persisted state: cached positions plus
// custom per-group sort orders.
func (t *Tracker) Snapshot() models.GridSnapshot {
	positions := make(map[string]models.CardPosition, len(t.positions))
	for id, p := range t.positions {
		positions[id] = p
	}
	orders := make(map[string][]string, len(t.customOrders))
	for k, v := range t.customOrders {
		orders[k] = append([]string{}, v...)
	}
	return models.GridSnapshot{Positions: positions, CustomSortOrders: orders}
}

// RestoreSnapshot replaces the tracker's persisted state with the
// snapshot. A malformed snapshot (nil position map, key/record-id
// mismatch, empty record id) is discarded wholesale with a logged
// warning; there is no partial merge.
func (t *Tracker) RestoreSnapshot(s models.GridSnapshot) error {
	if err := validateSnapshot(s); err != nil {
		t.logger.Warn("discarding malformed grid snapshot", "err", err)
		return err
	}

	positions := make(map[string]models.CardPosition, len(s.Positions))
	for id, p := range s.Positions {
		positions[id] = p
	}
	orders := make(map[string][]string, len(s.CustomSortOrders))
	for k, v := range s.CustomSortOrders {
		orders[k] = append([]string{}, v...)
	}
	t.positions = positions
	t.customOrders = orders
	return nil
}

// RestoreJSON parses and restores a serialized snapshot. Undecodable
// input is discarded with a logged warning, leaving prior state intact.
func (t *Tracker) RestoreJSON(data []byte) error {
	var s models.GridSnapshot
	if err := json.Unmarshal(data, &s); err != nil {
		t.logger.Warn("discarding undecodable grid snapshot", "err", err)
		return errors.Join(ErrMalformedSnapshot, err)
	}
	return t.RestoreSnapshot(s)
}

func validateSnapshot(s models.GridSnapshot) error {
	if s.Positions == nil {
		return ErrMalformedSnapshot
	}
	for id, p := range s.Positions {
		if id == "" || p.RecordID != id {
			return ErrMalformedSnapshot
		}
	}
	for key, ids := range s.CustomSortOrders {
		if key == "" {
			return ErrMalformedSnapshot
		}
		for _, rid := range ids {
			if rid == "" {
				return ErrMalformedSnapshot
			}
		}
	}
	return nil
}
