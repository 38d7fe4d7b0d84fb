package main

const terrainVertexShader = `#version 410 core
layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aNormal;

uniform mat4 uViewProj;

out vec3 vNormal;
out vec3 vPosition;

void main() {
	vNormal = aNormal;
	vPosition = aPosition;
	gl_Position = uViewProj * vec4(aPosition, 1.0);
}
`

const terrainFragmentShader = `#version 410 core
in vec3 vNormal;
in vec3 vPosition;

uniform vec3 uLightDir;
uniform vec3 uColor;

out vec4 fragColor;

void main() {
	float diffuse = max(dot(normalize(vNormal), normalize(-uLightDir)), 0.0);
	vec3 lit = uColor * (0.3 + 0.7 * diffuse);
	fragColor = vec4(lit, 1.0);
}
`
