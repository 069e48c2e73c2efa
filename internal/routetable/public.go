package routetable

import "github.com/JaimeStill/registry-admin/pkg/navigation"

func public(path, name string, component navigation.ComponentKey) navigation.Descriptor {
	return navigation.Descriptor{
		Path:      path,
		Name:      name,
		Component: component,
		Guard:     navigation.GuardPublic,
	}
}

func publicGroups() []navigation.Descriptor {
	return []navigation.Descriptor{
		authGroup(),
		errorGroup(),
	}
}

func authGroup() navigation.Descriptor {
	return navigation.Descriptor{
		Path:  "/auth",
		Name:  "Authentication",
		Guard: navigation.GuardPublic,
		Children: []navigation.Descriptor{
			public("/auth/login", "Sign In", "auth.Login"),
			public("/auth/forgot-password", "Forgot Password", "auth.ForgotPassword"),
			public("/auth/reset-password/:token", "Reset Password", "auth.ResetPassword"),
			public("/auth/verify/:token", "Verify Account", "auth.Verify"),
		},
	}
}

// errorGroup must stay last: "*" is the catch-all.
func errorGroup() navigation.Descriptor {
	return navigation.Descriptor{
		Path:  "/error",
		Name:  "Errors",
		Guard: navigation.GuardPublic,
		Children: []navigation.Descriptor{
			public("/401", "Unauthorized", "errors.Unauthorized"),
			public("/403", "Forbidden", "errors.Forbidden"),
			public("/500", "Server Error", "errors.ServerError"),
			public("*", "Not Found", "errors.NotFound"),
		},
	}
}
