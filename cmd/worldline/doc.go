// Command worldline solves relativistic rendezvous maneuvers, samples their
// worldlines and serves the same operations over HTTP.
//
// Usage:
//
//	worldline solve --x1 10 --t1 20
//	worldline sample --alpha 0.0667 --tau-f 16.48 --n 5
//	worldline plan --to-x 10 --to-t 20
//	worldline validate < points.json
//	worldline serve --config worldline.toml
//
// Every command prints JSON on stdout.
package main
