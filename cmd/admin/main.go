// Command admin runs maintenance tasks: schema migrations, the first
// administrator account and password hashes for manual fixes.
package main

import "github.com/Grupo-MCR/refatoracao-sistema-legado/cmd/admin/commands"

func main() {
	commands.Execute()
}
