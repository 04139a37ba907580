package server

//go:generate swag init -g internal/server/server.go -o docs/swagger

// @title PhishLens API
// @version 0.1
// @description Heuristic phishing-risk scoring for web pages, with an event log of past checks.
// @contact.name PhishLens Maintainers
// @contact.url https://github.com/raysh454/phishlens
// @BasePath /
