package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"socratic/adapters/excel"
	"socratic/domain/core"
	"socratic/domain/session"
	"socratic/internal"
	"socratic/ports"
)

// TransferService moves the journal across the store boundary: JSON backups
// out and in, plus a spreadsheet rendering for people who review offline.
// Backups round-trip verbatim: exported bytes are the stored bytes, and
// imported entries keep fields this version does not model.
type TransferService struct {
	store  ports.Store
	logger *internal.Logger
}

// NewTransferService creates the service.
func NewTransferService(store ports.Store, logger *internal.Logger) *TransferService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &TransferService{store: store, logger: logger}
}

// Export returns the history as a JSON array, byte-for-byte as stored. An
// empty journal exports as an empty array.
func (s *TransferService) Export() (json.RawMessage, error) {
	raw, ok, err := s.store.Get(ports.KeyHistory)
	if err != nil {
		return nil, err
	}
	if !ok {
		return json.RawMessage("[]"), nil
	}
	var probe []json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		s.logger.Warn("history value corrupted, exporting empty array: %v", core.ErrStoreCorruption)
		return json.RawMessage("[]"), nil
	}
	return raw, nil
}

// Import merges a JSON-array backup into the history, deduplicating by
// record id, and returns the number of newly added entries. Anything other
// than a JSON array is rejected whole: no partial merge occurs.
func (s *TransferService) Import(data []byte) (int, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return 0, fmt.Errorf("%w: backup must be a JSON array of sessions", core.ErrImportFormat)
	}

	var incoming []json.RawMessage
	if err := json.Unmarshal(trimmed, &incoming); err != nil {
		return 0, fmt.Errorf("%w: %v", core.ErrImportFormat, err)
	}

	existing, err := s.rawHistory()
	if err != nil {
		return 0, err
	}

	seen := make(map[core.EntryID]bool, len(existing))
	for _, entry := range existing {
		if id, ok := entryID(entry); ok {
			seen[id] = true
		}
	}

	added := 0
	merged := existing
	for _, entry := range incoming {
		id, ok := entryID(entry)
		if !ok {
			return 0, fmt.Errorf("%w: entry without a numeric id", core.ErrImportFormat)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		merged = append(merged, entry)
		added++
	}

	if added > 0 {
		raw, err := json.Marshal(merged)
		if err != nil {
			return 0, err
		}
		if err := s.store.Set(ports.KeyHistory, raw); err != nil {
			return 0, err
		}
	}

	s.logger.Info("import merged - incoming=%d added=%d total=%d", len(incoming), added, len(merged))
	return added, nil
}

// ExportExcel writes the history as an xlsx workbook.
func (s *TransferService) ExportExcel(w io.Writer) error {
	raw, err := s.Export()
	if err != nil {
		return err
	}
	records, err := decodeRecords(raw)
	if err != nil {
		return err
	}
	return excel.WriteHistory(w, records)
}

// rawHistory loads the stored history as raw elements so entries written by
// other versions keep their fields through a merge.
func (s *TransferService) rawHistory() ([]json.RawMessage, error) {
	raw, ok, err := s.store.Get(ports.KeyHistory)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []json.RawMessage{}, nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.logger.Warn("history value corrupted, merging into empty: %v", core.ErrStoreCorruption)
		return []json.RawMessage{}, nil
	}
	return entries, nil
}

func decodeRecords(raw json.RawMessage) ([]session.Record, error) {
	var records []session.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func entryID(entry json.RawMessage) (core.EntryID, bool) {
	var probe struct {
		ID core.EntryID `json:"id"`
	}
	if err := json.Unmarshal(entry, &probe); err != nil || probe.ID == 0 {
		return 0, false
	}
	return probe.ID, true
}
