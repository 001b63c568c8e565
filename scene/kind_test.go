package scene

import "testing"

func TestKindRoundTrip(t *testing.T) {
	kinds := []Kind{
		KindDag, KindTransform, KindShape, KindJoint,
		KindMesh, KindCurve, KindCamera, KindLight,
	}
	for _, k := range kinds {
		if back := KindFromString(k.String()); back != k {
			t.Errorf("expected %v to round-trip through its name, is %v", k, back)
		}
	}
}

func TestKindFromStringIsLenient(t *testing.T) {
	if k := KindFromString("  Transform "); k != KindTransform {
		t.Errorf("expected case/space-insensitive match, is %v", k)
	}
	if k := KindFromString("teapot"); k != KindInvalid {
		t.Errorf("expected unknown names to map to KindInvalid, is %v", k)
	}
}
