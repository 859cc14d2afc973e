package moderation

import "testing"

func TestGateAllowsAdministrators(t *testing.T) {
	gate := NewGate("")

	if !gate.Allow(Identity{Admin: true}) {
		t.Fatal("expected admin with no roles to be allowed")
	}
	if !gate.Allow(Identity{Admin: true, Roles: []string{"member"}}) {
		t.Fatal("expected admin with unrelated roles to be allowed")
	}
}

func TestGateAllowsModeratorRoleCaseInsensitively(t *testing.T) {
	gate := NewGate("")

	for _, role := range []string{"bot", "Bot", "BOT"} {
		id := Identity{Roles: []string{"member", role}}
		if !gate.Allow(id) {
			t.Fatalf("expected role %q to be allowed", role)
		}
	}
}

func TestGateDeniesEveryoneElse(t *testing.T) {
	gate := NewGate("")

	cases := []Identity{
		{},
		{Roles: []string{}},
		{Roles: []string{"member", "vip"}},
		{Roles: []string{"bots"}},
		{Roles: []string{"robot"}},
	}
	for _, id := range cases {
		if gate.Allow(id) {
			t.Fatalf("expected identity %+v to be denied", id)
		}
	}
}

func TestGateConfigurableRoleName(t *testing.T) {
	gate := NewGate("staff")

	if !gate.Allow(Identity{Roles: []string{"Staff"}}) {
		t.Fatal("expected configured role to be allowed")
	}
	if gate.Allow(Identity{Roles: []string{"bot"}}) {
		t.Fatal("expected default role name to be denied once reconfigured")
	}
}
