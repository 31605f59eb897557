// Command chatsettings decodes chat settings documents and inspects stored
// snapshots.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
