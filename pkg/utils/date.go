package utils

import (
	"time"
)

var kst = loadKST()

func loadKST() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

func TimeNowKST() time.Time {
	return time.Now().In(kst)
}
