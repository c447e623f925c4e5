// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/opplafy/tenant-manager/cmd"

func main() {
	cmd.Execute()
}
