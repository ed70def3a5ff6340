// The pmc command runs and inspects a modeled on-chip memory
// power-management controller.
package main

func main() {
	Execute()
}
