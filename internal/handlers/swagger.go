package handlers

// @title Random Number API
// @version 1.0
// @description A serverless API returning uniformly distributed random integers between 0 and 100
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/your-org/random-number-api
// @contact.email support@random-number-api.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @tag.name random
// @tag.description Random number generation operations
