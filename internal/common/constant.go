package common

// CredentialKeyToken is the single well-known key under which the bearer
// token is persisted in the local credential store.
const CredentialKeyToken = "token"
