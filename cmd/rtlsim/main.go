// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import "github.com/db47h/rtlsim/cmd/rtlsim/cmd"

func main() {
	cmd.Execute()
}
