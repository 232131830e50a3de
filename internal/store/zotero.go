package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite"

	"zotui/internal/model"
)

// Library is a read-only handle on a Zotero library: the zotero.sqlite
// database plus the data directory its stored attachments live under.
type Library struct {
	db      *sql.DB
	dbPath  string
	dataDir string
}

// Open resolves path to a Zotero database and opens it read-only. The path
// may name the data directory (the folder containing zotero.sqlite) or the
// sqlite file itself; stored attachments resolve against the directory
// either way.
func Open(path string) (*Library, error) {
	path = filepath.Clean(path)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}

	dbPath := path
	dataDir := filepath.Dir(path)
	if info.IsDir() {
		dbPath = filepath.Join(path, "zotero.sqlite")
		dataDir = path
		if _, err := os.Stat(dbPath); err != nil {
			return nil, fmt.Errorf("open library: %w", err)
		}
	}

	// mode=ro keeps us from ever taking a write lock on a database a running
	// Zotero may own; busy_timeout rides out its short write transactions.
	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open library: %w", err)
	}
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM items").Scan(&n); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s is not a Zotero database: %w", dbPath, err)
	}

	return &Library{db: db, dbPath: dbPath, dataDir: dataDir}, nil
}

func (l *Library) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

// Path returns the resolved sqlite file path.
func (l *Library) Path() string { return l.dbPath }

// Documents queries the library afresh and returns every regular item
// (attachments, notes, annotations and trashed items excluded) as an
// ordered document set. All documents share one field universe so the list
// header and every row project identically; missing values render empty.
func (l *Library) Documents(ctx context.Context) ([]model.Document, error) {
	items, err := l.readItems(ctx)
	if err != nil {
		return nil, err
	}
	if err := l.readFields(ctx, items); err != nil {
		return nil, err
	}
	if err := l.readCreators(ctx, items); err != nil {
		return nil, err
	}
	if err := l.readAttachments(ctx, items); err != nil {
		return nil, err
	}

	fields := fieldUniverse(items)
	docs := make([]model.Document, 0, len(items))
	for _, it := range items {
		values := make([]string, len(fields))
		for i, f := range fields {
			values[i] = it.values[f]
		}
		docs = append(docs, model.NewDocument(fields, values).WithAttachments(it.attachments))
	}
	return docs, nil
}

// Columns returns the field names of the current record set, in the same
// order Documents projects them. These are the legal values for the
// configured column list.
func (l *Library) Columns(ctx context.Context) ([]string, error) {
	docs, err := l.Documents(ctx)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0].Fields(), nil
}

type libraryItem struct {
	id          int64
	key         string
	dateAdded   string
	fieldOrder  []string
	values      map[string]string
	attachments []string
}

func (l *Library) readItems(ctx context.Context) ([]*libraryItem, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT i.itemID, i.key, i.dateAdded
		FROM items i
		JOIN itemTypes t ON t.itemTypeID = i.itemTypeID
		WHERE t.typeName NOT IN ('attachment', 'note', 'annotation')
		  AND i.itemID NOT IN (SELECT itemID FROM deletedItems)
		ORDER BY i.dateAdded, i.itemID`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []*libraryItem
	for rows.Next() {
		it := &libraryItem{values: map[string]string{}}
		if err := rows.Scan(&it.id, &it.key, &it.dateAdded); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.values["time added"] = it.dateAdded
		items = append(items, it)
	}
	return items, rows.Err()
}

func (l *Library) readFields(ctx context.Context, items []*libraryItem) error {
	byID := itemIndex(items)
	rows, err := l.db.QueryContext(ctx, `
		SELECT d.itemID, f.fieldName, v.value
		FROM itemData d
		JOIN fields f ON f.fieldID = d.fieldID
		JOIN itemDataValues v ON v.valueID = d.valueID
		ORDER BY d.itemID, d.fieldID`)
	if err != nil {
		return fmt.Errorf("query item fields: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var name, value string
		if err := rows.Scan(&id, &name, &value); err != nil {
			return fmt.Errorf("scan item field: %w", err)
		}
		it, ok := byID[id]
		if !ok {
			continue
		}
		display := displayFieldName(name)
		if _, dup := it.values[display]; !dup {
			it.fieldOrder = append(it.fieldOrder, display)
		}
		it.values[display] = value
		if name == "date" {
			if y := yearOf(value); y != "" {
				it.values["year"] = y
			}
		}
	}
	return rows.Err()
}

func (l *Library) readCreators(ctx context.Context, items []*libraryItem) error {
	byID := itemIndex(items)
	rows, err := l.db.QueryContext(ctx, `
		SELECT ic.itemID, c.lastName
		FROM itemCreators ic
		JOIN creators c ON c.creatorID = ic.creatorID
		ORDER BY ic.itemID, ic.orderIndex`)
	if err != nil {
		return fmt.Errorf("query creators: %w", err)
	}
	defer rows.Close()

	names := map[int64][]string{}
	for rows.Next() {
		var id int64
		var last string
		if err := rows.Scan(&id, &last); err != nil {
			return fmt.Errorf("scan creator: %w", err)
		}
		if last = strings.TrimSpace(last); last != "" {
			names[id] = append(names[id], last)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for id, ns := range names {
		if it, ok := byID[id]; ok {
			it.values["author"] = joinAuthors(ns)
		}
	}
	return nil
}

func (l *Library) readAttachments(ctx context.Context, items []*libraryItem) error {
	byID := itemIndex(items)
	rows, err := l.db.QueryContext(ctx, `
		SELECT a.parentItemID, i.key, a.path
		FROM itemAttachments a
		JOIN items i ON i.itemID = a.itemID
		WHERE a.parentItemID IS NOT NULL
		  AND a.path IS NOT NULL
		  AND a.itemID NOT IN (SELECT itemID FROM deletedItems)
		ORDER BY a.parentItemID, a.itemID`)
	if err != nil {
		return fmt.Errorf("query attachments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var parent int64
		var key, path string
		if err := rows.Scan(&parent, &key, &path); err != nil {
			return fmt.Errorf("scan attachment: %w", err)
		}
		it, ok := byID[parent]
		if !ok {
			continue
		}
		if resolved := l.resolveAttachmentPath(key, path); resolved != "" {
			it.attachments = append(it.attachments, resolved)
		}
	}
	return rows.Err()
}

// resolveAttachmentPath turns a Zotero attachment path into a filesystem
// path. Stored files use the "storage:<name>" form and live under
// <dataDir>/storage/<item key>/<name>; linked files keep their own path.
func (l *Library) resolveAttachmentPath(key, path string) string {
	const storagePrefix = "storage:"
	if strings.HasPrefix(path, storagePrefix) {
		name := strings.TrimPrefix(path, storagePrefix)
		if name == "" {
			return ""
		}
		return filepath.Join(l.dataDir, "storage", key, name)
	}
	return path
}

func itemIndex(items []*libraryItem) map[int64]*libraryItem {
	byID := make(map[int64]*libraryItem, len(items))
	for _, it := range items {
		byID[it.id] = it
	}
	return byID
}

// fieldUniverse fixes the shared field order: author first, then the data
// fields in first-seen library order, then the derived year and time added
// columns last.
func fieldUniverse(items []*libraryItem) []string {
	seen := map[string]bool{"author": true, "year": true, "time added": true}
	var middle []string
	for _, it := range items {
		for _, f := range it.fieldOrder {
			if !seen[f] {
				seen[f] = true
				middle = append(middle, f)
			}
		}
	}
	sort.SliceStable(middle, func(i, j int) bool {
		// Keep title-ish fields in front of the long tail.
		return fieldRank(middle[i]) < fieldRank(middle[j])
	})

	fields := make([]string, 0, len(middle)+3)
	fields = append(fields, "author")
	fields = append(fields, middle...)
	fields = append(fields, "year", "time added")
	return fields
}

func fieldRank(field string) int {
	switch field {
	case "title":
		return 0
	case "publication title":
		return 1
	default:
		return 2
	}
}

// displayFieldName spells a Zotero field name as lowercase words:
// publicationTitle -> "publication title", DOI -> "doi".
func displayFieldName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prev := name[i-1]
			if prev >= 'a' && prev <= 'z' {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// yearOf extracts the four-digit year from a Zotero multipart date value
// ("2008-02-01 February 1, 2008" and friends).
func yearOf(value string) string {
	run := 0
	for i, r := range value {
		if r >= '0' && r <= '9' {
			run++
			if run == 4 {
				return value[i-3 : i+1]
			}
			continue
		}
		run = 0
	}
	return ""
}

func joinAuthors(lastNames []string) string {
	switch len(lastNames) {
	case 0:
		return ""
	case 1:
		return lastNames[0]
	case 2:
		return lastNames[0] + " and " + lastNames[1]
	default:
		return lastNames[0] + " et al."
	}
}
