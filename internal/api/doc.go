// Package api provides the Battle.net Game Data API client for World of
// Warcraft Classic auction data.
//
// REST endpoints (https://{region}.api.blizzard.com):
//   - /data/wow/connected-realm/index
//   - /data/wow/connected-realm/{id}
//   - /data/wow/connected-realm/{id}/auctions/index
//   - /data/wow/connected-realm/{id}/auctions/{auction_house_id}
//
// Every request carries the bearer token and the Battlenet-Namespace header
// (dynamic-classic-{region}). Requests are never retried.
package api
