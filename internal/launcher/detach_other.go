//go:build !unix

package launcher

import "os/exec"

func detach(*exec.Cmd) {}
