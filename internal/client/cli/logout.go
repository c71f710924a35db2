package cli

func (c *Cli) runLogout() error {
	c.io.Println("=== Logout ===")

	c.authService.Logout()

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")

	return nil
}
