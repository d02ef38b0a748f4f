// Package courier is a small delivery game: a procedurally generated city of roads and buildings, AI traffic looping around
// fixed routes, and a player on a bike racing a countdown to drop parcels at randomly chosen buildings.
//
// The game only talks to its surroundings through two interfaces: a SceneSink it places Models into, and a PhysicsWorld it
// creates bodies in and steps. The render package provides an Ebitengine-backed SceneSink, and the physics package a
// PhysicsWorld; tests substitute fakes for both.
//
// A Session owns a whole round. Build one with NewSession, feed it input through its KeyState and call Update once per frame.
package courier
