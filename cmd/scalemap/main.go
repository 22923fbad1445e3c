// Command scalemap maps values between the scale and paint coordinates of a
// single axis.
//
//	echo 10 | scalemap --scale 1,1000 --paint 0,300 --transform log
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
