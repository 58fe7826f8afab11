package csvio

import (
	"fmt"
	"io"
)

// StoreProvisionHeader is the column schema of the store provisioning
// import and export.
var StoreProvisionHeader = []string{"店舗名", "店舗コード", "ユーザー名", "パスワード"}

// PasswordPlaceholder is written in place of the stored hash on export;
// credentials only ever travel into the system, never out.
const PasswordPlaceholder = "[暗号化済み]"

// ParsedStore is one row of a store provisioning file.
type ParsedStore struct {
	Row      int
	Name     string
	Code     string
	Username string
	Password string
}

// ParseStoreProvisioning reads a provisioning file: header row, then one
// (name, code, username, password) row per store. All four fields are
// required; incomplete rows are recorded and skipped.
func ParseStoreProvisioning(r io.Reader) ([]ParsedStore, *ErrorCollection, error) {
	reader, err := NewReader(r)
	if err != nil {
		return nil, nil, err
	}
	if _, err := reader.ReadHeader(); err != nil {
		return nil, nil, err
	}

	var parsed []ParsedStore
	errs := NewErrorCollection(DetailLimit)

	for {
		row, err := reader.ReadRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs.Add(NewRowError(row.Number, ErrCodeMissingFields, "malformed row", ""))
			continue
		}
		if row.IsEmpty() {
			continue
		}

		name, code := row.Field(0), row.Field(1)
		username, password := row.Field(2), row.Field(3)
		if name == "" || code == "" || username == "" || password == "" {
			errs.Add(NewRowError(row.Number, ErrCodeEmptyField,
				fmt.Sprintf("incomplete row (%s, %s, %s)", name, code, username), ""))
			continue
		}

		parsed = append(parsed, ParsedStore{
			Row:      row.Number,
			Name:     name,
			Code:     code,
			Username: username,
			Password: password,
		})
	}
	return parsed, errs, nil
}

// StoreExportRow is one data row of the store provisioning export.
type StoreExportRow struct {
	Name     string
	Code     string
	Username string
}

// SerializeStores renders the provisioning export. The password column
// always carries PasswordPlaceholder.
func SerializeStores(rows []StoreExportRow) ([]byte, error) {
	w := NewWriter(StoreProvisionHeader)
	for _, row := range rows {
		if err := w.WriteRow(row.Name, row.Code, row.Username, PasswordPlaceholder); err != nil {
			return nil, err
		}
	}
	return w.Bytes()
}
