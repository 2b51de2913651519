// @title Karttem Admin API
// @version 1.0
// @description Admin panel backend for the Karttem real-estate listings: properties, owners, users and property types.
// @BasePath /
// @securityDefinitions.apikey SessionCookie
// @in header
// @name Authorization
// @description Session token as "Bearer <token>"; browsers send the session cookie instead
package main

func main() {
	cfg := LoadConfiguration()

	app := NewApp(cfg)
	defer app.cleanup()

	app.InitializeServer()
	app.StartServer()
}
