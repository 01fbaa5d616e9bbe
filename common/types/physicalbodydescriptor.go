package types

import "github.com/bytearena/ecs"

// PhysicalBodyDescriptor is set as UserData on Box2D Physical bodies to be able to determine which entity a ray or a contact touched
type PhysicalBodyDescriptor struct {
	Type _physicaltype
	ID   ecs.EntityID
}

type _physicaltype string

func (t _physicaltype) String() string {
	switch t {
	case PhysicalBodyDescriptorType.Obstacle:
		return "Obstacle"
	case PhysicalBodyDescriptorType.Combatant:
		return "Combatant"
	case PhysicalBodyDescriptorType.Corpse:
		return "Corpse"
	case PhysicalBodyDescriptorType.CrouchZone:
		return "CrouchZone"
	}

	return "UnkownType"
}

var PhysicalBodyDescriptorType = struct {
	Obstacle   _physicaltype
	Combatant  _physicaltype
	Corpse     _physicaltype
	CrouchZone _physicaltype
}{
	Obstacle:   _physicaltype("o"),
	Combatant:  _physicaltype("c"),
	Corpse:     _physicaltype("x"),
	CrouchZone: _physicaltype("z"),
}

func MakePhysicalBodyDescriptor(type_ _physicaltype, id ecs.EntityID) PhysicalBodyDescriptor {
	return PhysicalBodyDescriptor{
		Type: type_,
		ID:   id,
	}
}
