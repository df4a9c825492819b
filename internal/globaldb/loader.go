package globaldb

import (
	"database/sql"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/standardbeagle/calltree/internal/callerr"
	"github.com/standardbeagle/calltree/internal/types"
)

// Load opens the GTAGS/GRTAGS/GPATH triple rooted at dir (each is its own
// SQLite database file) and builds the in-memory Model.
func Load(dir string) (*Model, error) {
	model := newModel()

	if err := loadPath(dir, model); err != nil {
		return nil, err
	}
	if err := loadGtags(dir, model); err != nil {
		return nil, err
	}
	if err := loadGrtags(dir, model); err != nil {
		return nil, err
	}

	return model, nil
}

// loadDB runs "select * from db" against a GLOBAL sqlite file and hands
// each row's columns to fn as raw text, mirroring GLOBAL's own untyped
// row handling.
func loadDB(path string, fn func(cols []string)) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT * FROM db`)
	if err != nil {
		return err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return err
	}

	dest := make([]interface{}, len(cols))
	scanBuf := make([]sql.NullString, len(cols))
	for i := range dest {
		dest[i] = &scanBuf[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return err
		}
		row := make([]string, len(cols))
		for i, v := range scanBuf {
			row[i] = v.String
		}
		fn(row)
	}
	return rows.Err()
}

func loadPath(dir string, model *Model) error {
	path := filepath.Join(dir, "GPATH")
	err := loadDB(path, func(cols []string) {
		if len(cols) < 2 {
			return
		}
		// Later rows overwrite earlier ones for a recurring key.
		model.PathMap[cols[0]] = cols[1]
	})
	if err != nil {
		return callerr.NewLoadError("global", path, err)
	}
	return nil
}

func loadGtags(dir string, model *Model) error {
	path := filepath.Join(dir, "GTAGS")
	err := loadDB(path, func(cols []string) {
		if len(cols) < 3 {
			return
		}
		symbol, info, fileSymbol := cols[0], cols[1], cols[2]
		line, original, ok := parseGtagsInfo(info)
		if !ok {
			return
		}
		filePath, known := model.PathMap[fileSymbol]
		if !known {
			return
		}
		model.Definitions = append(model.Definitions, definition{
			Symbol:       types.Symbol(symbol),
			Path:         types.FileID(filePath),
			Line:         line,
			IsMacro:      isDefineMacro(original),
			OriginalLine: original,
		})
	})
	if err != nil {
		return callerr.NewLoadError("global", path, err)
	}
	return nil
}

func loadGrtags(dir string, model *Model) error {
	path := filepath.Join(dir, "GRTAGS")
	err := loadDB(path, func(cols []string) {
		if len(cols) < 3 {
			return
		}
		symbol, info, fileSymbol := cols[0], cols[1], cols[2]
		deltas, ok := parseGrtagsInfo(info)
		if !ok {
			return
		}
		filePath, known := model.PathMap[fileSymbol]
		if !known {
			return
		}
		lines, err := decodeLineDeltas(deltas)
		if err != nil {
			return
		}
		sym := types.Symbol(symbol)
		for _, l := range lines {
			model.References[sym] = append(model.References[sym], types.Site{
				File: types.FileID(filePath),
				Line: l,
			})
		}
	})
	if err != nil {
		return callerr.NewLoadError("global", path, err)
	}
	return nil
}
