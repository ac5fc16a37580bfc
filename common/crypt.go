package common

const (
	salt = "a8#Fmr!2xZ(kq0_EaGr1Sup3r%pwd&&sAlt^^]9" //用户密码加盐
)

//用户密码进行MD5加盐哈希
func GetMD5Password(pwd string) string {
	return GetMD5OfStr(pwd + salt)
}
