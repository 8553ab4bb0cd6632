// Package cloud provides the 3-D map mode: loading point clouds from
// SQLite map databases and filtering them by intensity.
package cloud

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
	_ "modernc.org/sqlite"
)

var errNoPointTable = errors.New("no table with x/y/z coordinates found")

type pointColumns struct {
	table   string
	x, y, z string
	value   string // empty when the table has no intensity column
}

// ReadDB loads 3-D points from a SQLite map database. Any table carrying
// x/y/z (optionally value) or RTAB-Map style pose_x/pose_y/pose_z columns
// is accepted; missing intensity defaults to 1.
func ReadDB(path string) (*pc.PointCloud, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	cols, err := detectPointTable(db)
	if err != nil {
		return nil, err
	}

	valueExpr := "1.0"
	if cols.value != "" {
		valueExpr = cols.value
	}
	rows, err := db.Query(fmt.Sprintf(
		"SELECT %s, %s, %s, %s FROM %s", cols.x, cols.y, cols.z, valueExpr, cols.table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pts []float32
	for rows.Next() {
		var x, y, z, v float64
		if err := rows.Scan(&x, &y, &z, &v); err != nil {
			return nil, err
		}
		pts = append(pts, float32(x), float32(y), float32(z), float32(v))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	n := len(pts) / 4
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version:   0.7,
			Fields:    []string{"x", "y", "z", "intensity"},
			Size:      []int{4, 4, 4, 4},
			Type:      []string{"F", "F", "F", "F"},
			Count:     []int{1, 1, 1, 1},
			Width:     n,
			Height:    1,
			Viewpoint: []float32{0, 0, 0, 1, 0, 0, 0},
		},
		Points: n,
	}
	pp.Data = make([]byte, n*pp.Stride())
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	vt, err := pp.Float32Iterator("intensity")
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		it.SetVec3(mat.Vec3{pts[4*i], pts[4*i+1], pts[4*i+2]})
		vt.SetFloat32(pts[4*i+3])
		it.Incr()
		vt.Incr()
	}
	return pp, nil
}

func detectPointTable(db *sql.DB) (pointColumns, error) {
	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='table'")
	if err != nil {
		return pointColumns{}, err
	}
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return pointColumns{}, err
		}
		tables = append(tables, name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return pointColumns{}, err
	}

	for _, table := range tables {
		cols, err := tableColumns(db, table)
		if err != nil {
			return pointColumns{}, err
		}
		switch {
		case cols["x"] && cols["y"] && cols["z"] && cols["value"]:
			return pointColumns{table: table, x: "x", y: "y", z: "z", value: "value"}, nil
		case cols["x"] && cols["y"] && cols["z"]:
			return pointColumns{table: table, x: "x", y: "y", z: "z"}, nil
		case cols["pose_x"] && cols["pose_y"] && cols["pose_z"]:
			return pointColumns{table: table, x: "pose_x", y: "pose_y", z: "pose_z"}, nil
		}
	}
	return pointColumns{}, errNoPointTable
}

func tableColumns(db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, typ        string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols[name] = true
	}
	return cols, rows.Err()
}
