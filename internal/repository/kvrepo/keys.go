// Package kvrepo implements the repositories over an injected kv.Store.
// The key layout mirrors the app's original local storage:
//
//	trackhq_users            global profile list
//	trackhq_current_user     active profile ID (raw string)
//	trackhq_auth_list        toy credential list
//	<profileID>_workouts     per-profile workout array
//	<profileID>_templates    per-profile template array
//	<profileID>_user_prefs   per-profile preference map
package kvrepo

const (
	usersKey       = "trackhq_users"
	currentUserKey = "trackhq_current_user"
	authListKey    = "trackhq_auth_list"

	// legacyNamespace scopes record keys when no profile is active,
	// kept for data written before profiles existed.
	legacyNamespace = "trackhq"

	workoutsSuffix  = "workouts"
	templatesSuffix = "templates"
	prefsSuffix     = "user_prefs"
)

func dataKey(namespace, suffix string) string {
	return namespace + "_" + suffix
}

func namespacePrefix(profileID string) string {
	return profileID + "_"
}
