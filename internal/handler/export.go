package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"canteen_id", "canteen_name", "window_id", "window_name",
	"dish_id", "dish_name", "price_cents", "tags",
}

// export handles GET /admin/export. It returns one row per dish across
// every canteen and window; ?format=csv switches from JSON to CSV.
func (s *Server) export(w http.ResponseWriter, r *http.Request) {
	rows, err := s.svc.Export.Export(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if r.URL.Query().Get("format") != "csv" {
		s.writeJSON(w, r, http.StatusOK, rows)
		return
	}

	// Tags within a row are pipe-separated to keep each dish on one line.
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	_ = cw.Write(csvHeaders)
	for _, row := range rows {
		rec := []string{
			strconv.FormatInt(row.CanteenID, 10),
			row.CanteenName,
			strconv.FormatInt(row.WindowID, 10),
			row.WindowName,
			"", "", "",
			strings.Join(row.Tags, "|"),
		}
		if row.DishID != 0 {
			rec[4] = strconv.FormatInt(row.DishID, 10)
			rec[5] = row.DishName
			rec[6] = strconv.FormatInt(row.PriceCents, 10)
		}
		_ = cw.Write(rec)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="menu.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
