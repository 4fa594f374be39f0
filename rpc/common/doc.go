// Package common provides the shared configuration types of the rpc layer.
//
// Both the server side (transports, accept loop) and the client consume
// these structs; keeping them here avoids import cycles between the two.
package common
