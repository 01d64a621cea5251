// Package services holds the console's application services:
//   - SessionService: the Session Store (login, logout, lookup)
//   - DashboardService: aggregate statistics for the Dashboard screen
package services
