// Package localeenv provides locale sources: small adapters that report the
// environment's preferred language tags for initial locale resolution.
//
// Three sources are included:
//
//   - Env reads POSIX locale environment variables (LANGUAGE, LC_ALL,
//     LC_MESSAGES, LANG) and canonicalizes them to BCP 47 form.
//   - Header parses an Accept-Language header into a quality-ordered list.
//   - Static serves fixed values, which is handy in tests.
//
// Every source may legitimately report nothing; callers fall back to their
// configured default locale in that case.
package localeenv
