// Package view translates engine changes into row operations on a Host.
package view
