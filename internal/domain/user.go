package domain

// User is the signed-in athlete as returned by the sign-in endpoint.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsNew     bool   `json:"isNew"` // must change the provisional password before anything else
}

// Screen names the navigation roots the core may reset to.
type Screen string

const (
	ScreenSplash               Screen = "SplashScreen"
	ScreenSignIn               Screen = "SignInScreen"
	ScreenSignInChangePassword Screen = "SignInChangePasswordScreen"
	ScreenCalendar             Screen = "Calendar"
)
