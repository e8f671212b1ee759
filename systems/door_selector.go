package systems

// DoorSelector is any room a camera can walk through
type DoorSelector interface {
	// SmallestIndex and LargestIndex are the inclusive bounds of the slots
	SmallestIndex() int
	LargestIndex() int
	// CanEnterDoor is false for every index outside the bounds
	CanEnterDoor(index int) bool
	// EnterDoor disposes the current layout and builds the next room
	EnterDoor(index int)
	// MovedTo is called when the camera is created and after every move
	MovedTo(index int)
}
