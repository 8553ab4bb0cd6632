package grid

// Occupancy map gray levels used by the ROS map_server convention.
const (
	GrayOccupied = 0
	GrayUnknown  = 205
	GrayFree     = 255
)

// Stats summarizes the occupancy of a raster.
type Stats struct {
	Occupied float64
	Free     float64
	Unknown  float64
}

// Stats classifies pixels by the R channel: 0 is occupied, 205 unknown,
// everything else free.
func (r *Raster) Stats() Stats {
	total := r.Width * r.Height
	if total == 0 {
		return Stats{}
	}
	var occ, unk int
	for i := 0; i < len(r.Pix); i += 4 {
		switch r.Pix[i] {
		case GrayOccupied:
			occ++
		case GrayUnknown:
			unk++
		}
	}
	return Stats{
		Occupied: float64(occ) / float64(total),
		Unknown:  float64(unk) / float64(total),
		Free:     float64(total-occ-unk) / float64(total),
	}
}
