// Package aco implements the Ant Colony Optimization refiner: a
// classical Ant System with elitism that re-sequences one day's
// non-depot stops to shorten the intra-day tour without altering the
// set of stops, their feasibility, or the day's meal count.
//
// The Euclidean distance matrix it runs over is a
// github.com/katalvlaran/lvlath/matrix Dense; the CVRPTW builder's
// transit table is a plain [][]int instead.
package aco
