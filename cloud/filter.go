package cloud

import (
	"github.com/seqsense/pcgol/pc"
)

// IntensityPassThrough keeps the points whose intensity is at most max,
// preserving point order.
func IntensityPassThrough(pp *pc.PointCloud, max float32) (*pc.PointCloud, error) {
	it, err := pp.Float32Iterator("intensity")
	if err != nil {
		return nil, err
	}
	vals := make([]float32, pp.Points)
	for i := 0; it.IsValid() && i < pp.Points; i++ {
		vals[i] = it.Float32()
		it.Incr()
	}
	return passThrough(pp, func(i int) bool {
		return vals[i] <= max
	})
}

// passThrough copies the selected points into a new cloud, batching
// contiguous runs into single copies.
func passThrough(pp *pc.PointCloud, fn func(i int) bool) (*pc.PointCloud, error) {
	pcNew := &pc.PointCloud{
		PointCloudHeader: pp.PointCloudHeader.Clone(),
		Data:             make([]byte, len(pp.Data)),
		Points:           pp.Points,
	}

	i, j := 0, 0
	is, js, cnt := 0, 0, 0
	n := pp.Points
L_SCAN:
	for {
		for {
			if i >= n {
				if cnt > 0 {
					pc.Copy(pcNew, js, pp, is, cnt)
				}
				break L_SCAN
			}
			if fn(i) {
				break
			}
			i++
			if cnt > 0 {
				pc.Copy(pcNew, js, pp, is, cnt)
				cnt = 0
			}
		}
		if cnt == 0 {
			is, js = i, j
		}
		i++
		j++
		cnt++
	}

	pcNew.Points = j
	pcNew.Width = j
	pcNew.Height = 1
	pcNew.Data = pcNew.Data[: j*pcNew.Stride() : j*pcNew.Stride()]
	return pcNew, nil
}
